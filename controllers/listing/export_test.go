package listingControllers

// Alias exposing the unexported response type to the external test package.
type ListingResponse = listingResponse
