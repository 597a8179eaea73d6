package service

import "errors"

var (
	// ErrNotFound is returned when a referenced entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrDocumentNotFound is returned when a referenced document is absent.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrFolderNotFound is returned when a referenced folder is absent.
	ErrFolderNotFound = errors.New("folder not found")
	// ErrCabinetNotFound is returned when a referenced cabinet is absent.
	ErrCabinetNotFound = errors.New("cabinet not found")
	// ErrSelfLink is returned when a link targets its own source.
	ErrSelfLink = errors.New("link source and target are the same document")
	// ErrDuplicateLink is returned when an identical direction edge already exists.
	ErrDuplicateLink = errors.New("link already exists for this source and target")
	// ErrSelfFolder is returned when a shortcut targets the document's own folder.
	ErrSelfFolder = errors.New("shortcut folder is the document's own folder")
	// ErrDuplicateShortcut is returned when the document is already placed in the folder.
	ErrDuplicateShortcut = errors.New("shortcut already exists for this document and folder")
	// ErrOrphanedParent is returned when a restore target's parent no longer exists.
	ErrOrphanedParent = errors.New("original parent no longer exists")
	// ErrCheckedOut is returned when a document is checked out by another user.
	ErrCheckedOut = errors.New("document is checked out by another user")
	// ErrStatusInUse is returned when deleting a workflow status still carried by documents.
	ErrStatusInUse = errors.New("workflow status is in use")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrValidation is returned for malformed input caught before any persistence attempt.
	ErrValidation = errors.New("validation failed")
)
