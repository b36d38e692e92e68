package controllers

import "errors"

var errStorageOff = errors.New("object storage not configured")
