package domain

import "errors"

// ErrQuestionNotFound is returned when a vote or read targets a question
// that does not exist.
var ErrQuestionNotFound = errors.New("question not found")

// ErrWalletNotFound is returned when settlement targets a user with no
// wallet entry.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrInsufficientFunds is returned when the dislike gate rejects a voter
// whose balance is already non-positive.
var ErrInsufficientFunds = errors.New("not enough balance")
