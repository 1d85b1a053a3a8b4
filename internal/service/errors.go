package service

import "errors"

var (
	ErrEmptyUserID   = errors.New("user id is empty")
	ErrEmptyRecordID = errors.New("record id is empty")
)
