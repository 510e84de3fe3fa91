package reminder

import "errors"

var (
	ErrValidation            = errors.New("invalid reminder")
	ErrReminderAlreadyExists = errors.New("reminder already exists")
	ErrReminderDoesNotExist  = errors.New("reminder does not exist")
)
