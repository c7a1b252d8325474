// Package mocks provides test doubles for ports interfaces.
//
// These mocks are simple, thread-safe, in-memory implementations suitable for
// unit testing. Each mock provides:
//
//   - Default behavior that returns reasonable test values
//   - Callback functions (xxxFn) for customizing behavior per test
//   - Recorded calls for verification after the fact
//   - Reset methods for test isolation
//
// # Usage Example
//
//	func TestGreeting(t *testing.T) {
//		tr := mocks.NewTranslator()
//		tr.TranslateFn = func(_ context.Context, text, _, _ string) (string, error) {
//			return text + " (translated)", nil
//		}
//
//		svc := greeting.NewService(memory.NewPersonRepository(), tr)
//		// ... test service behavior
//	}
//
// # Available Mocks
//
//   - Translator: implements ports.Translator
//   - AstroGateway: implements ports.AstroGateway
//   - ExtractFetcher: implements ports.ExtractFetcher
//   - PersonRepository: wraps any ports.PersonRepository and counts calls
//
// Testify mocks are used directly in package tests when call expectations
// are the point of the test.
package mocks
