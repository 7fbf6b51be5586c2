// Package testutil provides shared test doubles and fixtures.
//
// It contains three components:
//
// 1. Service mocks (mock_services.go): testify mocks of the API service
// interfaces, used by handler tests.
//
// 2. Provider doubles (mock_provider.go): a testify MockProvider and a
// configurable StubProvider with per-file responses, errors, latency and
// call tracking.
//
// 3. Fixtures (fixtures.go): sample transcription text and generated script
// payloads, valid and broken.
//
// # Usage
//
//	stub := testutil.NewStubProvider()
//	stub.ResponseMap["meeting.mp3"] = testutil.SampleTranscription
//	stub.GenerateResponse = testutil.SampleScriptJSON
package testutil
