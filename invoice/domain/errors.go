package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind groups invoice errors by the stage that produced them.
type Kind int

const (
	KindUnknown Kind = iota
	KindInput
	KindConfiguration
	KindEnvironment
	KindRendering
	KindUpload
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindConfiguration:
		return "configuration"
	case KindEnvironment:
		return "environment"
	case KindRendering:
		return "rendering"
	case KindUpload:
		return "upload"
	default:
		return "unknown"
	}
}

var (
	ErrMissingOrderID = errors.New("order id is required")
	ErrNoItems        = errors.New("order has no items")
	ErrInvalidItem    = errors.New("invalid order item")

	ErrMissingCredentials = errors.New("missing upload service credentials")

	ErrBrowserNotFound = errors.New("no browser executable found")

	ErrRender = errors.New("failed to render invoice pdf")

	ErrUpload           = errors.New("failed to upload invoice")
	ErrUploadTimeout    = errors.New("invoice upload timed out")
	ErrUploadMissingURL = errors.New("upload response has no secure url")
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrMissingOrderID, KindInput},
	{ErrNoItems, KindInput},
	{ErrInvalidItem, KindInput},
	{ErrMissingCredentials, KindConfiguration},
	{ErrBrowserNotFound, KindEnvironment},
	{ErrRender, KindRendering},
	{ErrUpload, KindUpload},
	{ErrUploadTimeout, KindUpload},
	{ErrUploadMissingURL, KindUpload},
}

// KindOf classifies err, looking through wrapped errors.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}

	return KindUnknown
}

// BrowserNotFoundError lists every location probed for a browser executable.
type BrowserNotFoundError struct {
	Searched []string
}

func (e *BrowserNotFoundError) Error() string {
	return fmt.Sprintf("%s, searched: %s", ErrBrowserNotFound, strings.Join(e.Searched, ", "))
}

func (e *BrowserNotFoundError) Is(target error) bool {
	return target == ErrBrowserNotFound
}

// MissingCredentialsError names the configuration values that are absent.
type MissingCredentialsError struct {
	Provider string
	Missing  []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("%s: %s requires %s", ErrMissingCredentials, e.Provider, strings.Join(e.Missing, ", "))
}

func (e *MissingCredentialsError) Is(target error) bool {
	return target == ErrMissingCredentials
}
