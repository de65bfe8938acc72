package platform

// Package platform contains OS and filesystem glue: the shared download drop
// zone, artifact lookup and removal by job prefix, locating bundled tools and
// recognizing supported video links.
