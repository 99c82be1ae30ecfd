package utils

import "github.com/google/uuid"

// UUIDGenerator mints session ids and the names stored photos get on disk.
// The ids are random (v4) so that names derived from their prefix neither
// collide for uploads stored close together nor reveal the upload time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return new(UUIDGenerator)
}

func (*UUIDGenerator) Generate() string {
	return uuid.NewString()
}
