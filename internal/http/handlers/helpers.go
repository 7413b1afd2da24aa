package handlers

import "errors"

// errNoSession means the session middleware is not on the route chain.
var errNoSession = errors.New("no session on request")
