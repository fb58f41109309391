package handler

// Export for testing
type NamespaceResponse = namespaceResponse
type NamespaceListResponse = namespaceListResponse

var NewRatelimitHandlerHelper = NewRatelimitHandler
var NewPageHandlerHelper = NewPageHandler

var WriteServiceError = writeServiceError
