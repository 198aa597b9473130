// Package prompt fills sections of an applicant document from an interactive
// terminal session. The survey-backed driver sits behind the PromptDriver
// interface so the walk logic is testable with a scripted fake.
package prompt
