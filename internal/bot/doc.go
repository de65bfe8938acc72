package bot

// Package bot is the chat front-end: it recognizes submitted links, offers
// the video/audio choice, drives each selection through download, delivery
// and cleanup, and talks to Telegram through the Messenger boundary.
