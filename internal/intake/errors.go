package intake

import "errors"

var (
	ErrNoFile         = errors.New("no file to store")
	ErrStoringFile    = errors.New("error storing file")
	ErrCreatingMedia  = errors.New("error creating media")
	ErrCreatingPost   = errors.New("error creating submission")
	ErrAttachingMedia = errors.New("error attaching media")
	ErrMeasuringFile  = errors.New("error measuring stored file")
)
