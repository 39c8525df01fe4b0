package jellyfin

import (
	"maps"
	"slices"

	"github.com/speakeasy-api/querystring/querystring"
)

// Registry maps DTO names to constructors for empty values.
type Registry map[string]func() querystring.Object

// DefaultRegistry holds every DTO in this package under its Jellyfin schema name.
var DefaultRegistry = Registry{
	"BaseItemDto":       func() querystring.Object { return &BaseItemDto{} },
	"DeviceProfile":     func() querystring.Object { return &DeviceProfile{} },
	"DirectPlayProfile": func() querystring.Object { return &DirectPlayProfile{} },
	"GetProgramsDto":    func() querystring.Object { return NewGetProgramsDto() },
	"MediaAttachment":   func() querystring.Object { return &MediaAttachment{} },
	"MediaSourceInfo":   func() querystring.Object { return NewMediaSourceInfo() },
	"MediaStream":       func() querystring.Object { return &MediaStream{} },
	"PlaybackInfoDto":   func() querystring.Object { return &PlaybackInfoDto{} },
	"PlayerStateInfo":   func() querystring.Object { return &PlayerStateInfo{} },
	"SessionInfoDto":    func() querystring.Object { return NewSessionInfoDto() },
	"UserItemDataDto":   func() querystring.Object { return &UserItemDataDto{} },
}

// Lookup returns the constructor registered under name.
func (r Registry) Lookup(name string) (func() querystring.Object, bool) {
	ctor, ok := r[name]
	return ctor, ok
}

// Names returns the registered names in ascending order.
func (r Registry) Names() []string {
	return slices.Sorted(maps.Keys(r))
}

// Lookup looks name up in DefaultRegistry.
func Lookup(name string) (func() querystring.Object, bool) {
	return DefaultRegistry.Lookup(name)
}

// Names lists DefaultRegistry.
func Names() []string {
	return DefaultRegistry.Names()
}
