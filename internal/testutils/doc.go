// Package testutils provides testing utilities shared by the study notes API
// packages.
//
// This package contains helpers for:
//   - capturing structured log output (TestSlogHandler)
//   - running test servers and sending generation requests
//   - asserting the exact JSON error bodies returned by the API
//
// Example:
//
//	server := testutils.CreateTestServer(t, router)
//	resp := testutils.ExecuteGenerateRequest(t, server, http.MethodPost, `{"topic":"photosynthesis"}`)
//	testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, "Topic is required")
package testutils
