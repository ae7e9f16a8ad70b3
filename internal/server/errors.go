package server

import "errors"

// errNoServersAreCreated is returned by NewServer when no transport handler
// matches a configured address.
var errNoServersAreCreated = errors.New("no servers are created")
