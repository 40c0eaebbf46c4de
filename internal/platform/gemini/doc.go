// Package gemini provides an implementation of the generation.Provider
// interface that uses Google's Gemini API through the google.golang.org/genai
// client library.
//
// The system turn of a completion request becomes the Gemini system
// instruction and the remaining turns become the request contents. Responses
// are requested with the application/json MIME type. API errors are
// translated into *generation.ProviderError carrying the HTTP status code and
// message reported by the API.
package gemini
