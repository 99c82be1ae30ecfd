// Package http implements the HTTP transport of the photo submission
// service.
//
// It exposes the submit endpoint that runs the upload pipeline and answers
// with a redirect, the notice endpoint read by the page the redirect lands
// on, the eligibility endpoint used to decide whether the form is shown,
// and the version and metrics endpoints. Request tracing, access logging,
// submitter identification and the session cookie are handled by
// middleware before requests reach the service layer.
package http
