package db

// Note: Unit tests for user repository methods are not included here
// because these methods require database access. All testing is done via
// integration tests in db_integration_test.go which cover:
// - CreateUser / GetUser / GetUserByEmail: success and not-found cases
// - CheckEmailExists: existing, non-existent, and case-folded emails
// - UpdatePassword: success, user not found, password_set flag
// - UpdateUser / DeleteUser: success and not-found cases
//
// Email addresses are lower-cased on write and on lookup, so lookups are
// case-insensitive without a functional index.
