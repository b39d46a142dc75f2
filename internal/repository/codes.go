package repository

// Error codes attached to the typed errors returned by the repositories.
// Handlers dispatch on these codes instead of inspecting database error
// strings.
const (
	// CodeUniqueViolation signals that a create or update would duplicate a
	// value under a unique constraint. Details carry the conflicting field.
	CodeUniqueViolation = "UNIQUE_VIOLATION"

	// CodeForeignKeyViolation signals that a create or update references a
	// parent record that does not exist. Details carry the relation message.
	CodeForeignKeyViolation = "FOREIGN_KEY_VIOLATION"

	// CodeReferentialBlock signals that a delete is blocked because
	// dependent records still reference the target.
	CodeReferentialBlock = "REFERENTIAL_BLOCK"

	// CodeNotFound signals that no record matches the given identity.
	CodeNotFound = "OBJECT_NOT_FOUND"
)
