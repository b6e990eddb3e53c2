package reviewControllers

// Alias exposing the unexported response type to the external test package.
type ReviewResponse = reviewResponse
