package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSettingNotFound indicates that a settings key has never been stored.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidDate indicates a date parameter that is missing or malformed.
	ErrInvalidDate = errors.New("invalid date")

	ErrInvalidQuery = errors.New("invalid query parameter")

	// ErrCorruptRecord indicates a stored row that can no longer be decoded,
	// for example a description encrypted with a different key.
	ErrCorruptRecord = errors.New("stored record cannot be decoded")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Transaction operation errors
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")
	ErrFailedToCreateTransaction    = errors.New("failed to create transaction")
	ErrFailedToDeleteTransaction    = errors.New("failed to delete transaction")
	ErrFailedToExportTransactions   = errors.New("failed to export transactions")

	// Report operation errors
	ErrFailedToBuildSummary  = errors.New("failed to build summary")
	ErrFailedToBuildReport   = errors.New("failed to build report")
	ErrFailedToBuildCalendar = errors.New("failed to build calendar")

	// Goal operation errors
	ErrFailedToRetrieveGoal = errors.New("failed to retrieve goal")
	ErrFailedToUpdateGoal   = errors.New("failed to update goal")

	// Snapshot operation errors
	ErrFailedToRetrieveSnapshots = errors.New("failed to retrieve snapshots")
	ErrFailedToCreateSnapshot    = errors.New("failed to create snapshot")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)
