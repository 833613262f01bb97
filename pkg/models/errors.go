package models

import "errors"

// Error kinds. Every error returned by the project loader and the PDF
// generator wraps exactly one of these.
var (
	ErrConfig = errors.New("config error")
	ErrFont   = errors.New("font error")
	ErrRender = errors.New("render error")
	ErrIO     = errors.New("io error")
)
