// Package domain contains the core entities of the application: the topic a
// user asks about and the study notes generated for it. It is independent of
// HTTP and of any specific LLM provider.
package domain
