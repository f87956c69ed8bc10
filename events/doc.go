// Package events exposes Go handlers to page scripts as global functions.
package events
