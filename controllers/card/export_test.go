package cardControllers

// Alias exposing the unexported response type to the external test package.
type CardResponse = cardResponse
