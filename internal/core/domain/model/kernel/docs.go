// Package kernel contains shared value objects used across the domain model.
// These are the building blocks every aggregate relies on: identity (UUID) and
// the validation conventions that go with it. Kernel types are immutable,
// comparable, and safe for concurrent use.
package kernel
