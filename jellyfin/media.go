package jellyfin

import (
	"github.com/speakeasy-api/querystring/pointer"
	"github.com/speakeasy-api/querystring/querystring"
	"github.com/speakeasy-api/querystring/sequencedmap"
)

// MediaSourceInfo describes one playable source of an item.
type MediaSourceInfo struct {
	Protocol                            *MediaProtocol                     `json:"Protocol,omitempty" query:"Protocol"`
	ID                                  *string                            `json:"Id,omitempty" query:"Id"`
	Path                                *string                            `json:"Path,omitempty" query:"Path"`
	EncoderPath                         *string                            `json:"EncoderPath,omitempty" query:"EncoderPath"`
	EncoderProtocol                     *MediaProtocol                     `json:"EncoderProtocol,omitempty" query:"EncoderProtocol"`
	Container                           *string                            `json:"Container,omitempty" query:"Container"`
	Size                                *int64                             `json:"Size,omitempty" query:"Size"`
	Name                                *string                            `json:"Name,omitempty" query:"Name"`
	IsRemote                            *bool                              `json:"IsRemote,omitempty" query:"IsRemote"`
	ETag                                *string                            `json:"ETag,omitempty" query:"ETag"`
	RunTimeTicks                        *int64                             `json:"RunTimeTicks,omitempty" query:"RunTimeTicks"`
	SupportsTranscoding                 *bool                              `json:"SupportsTranscoding,omitempty" query:"SupportsTranscoding"`
	SupportsDirectStream                *bool                              `json:"SupportsDirectStream,omitempty" query:"SupportsDirectStream"`
	SupportsDirectPlay                  *bool                              `json:"SupportsDirectPlay,omitempty" query:"SupportsDirectPlay"`
	IsInfiniteStream                    *bool                              `json:"IsInfiniteStream,omitempty" query:"IsInfiniteStream"`
	UseMostCompatibleTranscodingProfile *bool                              `json:"UseMostCompatibleTranscodingProfile,omitempty" query:"UseMostCompatibleTranscodingProfile"`
	RequiresOpening                     *bool                              `json:"RequiresOpening,omitempty" query:"RequiresOpening"`
	OpenToken                           *string                            `json:"OpenToken,omitempty" query:"OpenToken"`
	LiveStreamID                        *string                            `json:"LiveStreamId,omitempty" query:"LiveStreamId"`
	BufferMs                            *int32                             `json:"BufferMs,omitempty" query:"BufferMs"`
	MediaStreams                        []*MediaStream                     `json:"MediaStreams,omitempty" query:"MediaStreams"`
	MediaAttachments                    []*MediaAttachment                 `json:"MediaAttachments,omitempty" query:"MediaAttachments"`
	Formats                             []string                           `json:"Formats,omitempty" query:"Formats"`
	Bitrate                             *int32                             `json:"Bitrate,omitempty" query:"Bitrate"`
	RequiredHTTPHeaders                 *sequencedmap.Map[string, *string] `json:"RequiredHttpHeaders,omitempty" query:"RequiredHttpHeaders"`
	TranscodingURL                      *string                            `json:"TranscodingUrl,omitempty" query:"TranscodingUrl"`
	TranscodingContainer                *string                            `json:"TranscodingContainer,omitempty" query:"TranscodingContainer"`
	DefaultAudioStreamIndex             *int32                             `json:"DefaultAudioStreamIndex,omitempty" query:"DefaultAudioStreamIndex"`
	DefaultSubtitleStreamIndex          *int32                             `json:"DefaultSubtitleStreamIndex,omitempty" query:"DefaultSubtitleStreamIndex"`
	HasSegments                         *bool                              `json:"HasSegments,omitempty" query:"HasSegments"`
}

// NewMediaSourceInfo returns a source with the server defaults set.
func NewMediaSourceInfo() *MediaSourceInfo {
	return &MediaSourceInfo{
		UseMostCompatibleTranscodingProfile: pointer.From(false),
	}
}

var _ querystring.Object = (*MediaSourceInfo)(nil)

// QueryFields returns the fields of MediaSourceInfo in declaration order.
func (m *MediaSourceInfo) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Optional("Protocol", m.Protocol),
		querystring.Optional("Id", m.ID),
		querystring.Optional("Path", m.Path),
		querystring.Optional("EncoderPath", m.EncoderPath),
		querystring.Optional("EncoderProtocol", m.EncoderProtocol),
		querystring.Optional("Container", m.Container),
		querystring.Optional("Size", m.Size),
		querystring.Optional("Name", m.Name),
		querystring.Optional("IsRemote", m.IsRemote),
		querystring.Optional("ETag", m.ETag),
		querystring.Optional("RunTimeTicks", m.RunTimeTicks),
		querystring.Optional("SupportsTranscoding", m.SupportsTranscoding),
		querystring.Optional("SupportsDirectStream", m.SupportsDirectStream),
		querystring.Optional("SupportsDirectPlay", m.SupportsDirectPlay),
		querystring.Optional("IsInfiniteStream", m.IsInfiniteStream),
		querystring.Optional("UseMostCompatibleTranscodingProfile", m.UseMostCompatibleTranscodingProfile),
		querystring.Optional("RequiresOpening", m.RequiresOpening),
		querystring.Optional("OpenToken", m.OpenToken),
		querystring.Optional("LiveStreamId", m.LiveStreamID),
		querystring.Optional("BufferMs", m.BufferMs),
		querystring.ObjectSequence("MediaStreams", m.MediaStreams),
		querystring.ObjectSequence("MediaAttachments", m.MediaAttachments),
		querystring.Sequence("Formats", m.Formats),
		querystring.Optional("Bitrate", m.Bitrate),
		querystring.OrderedMapping("RequiredHttpHeaders", m.RequiredHTTPHeaders),
		querystring.Optional("TranscodingUrl", m.TranscodingURL),
		querystring.Optional("TranscodingContainer", m.TranscodingContainer),
		querystring.Optional("DefaultAudioStreamIndex", m.DefaultAudioStreamIndex),
		querystring.Optional("DefaultSubtitleStreamIndex", m.DefaultSubtitleStreamIndex),
		querystring.Optional("HasSegments", m.HasSegments),
	}
}

// ToURLQueryString renders MediaSourceInfo as a form style query string.
func (m *MediaSourceInfo) ToURLQueryString() string {
	return querystring.Serialize(m)
}

// ToURLQueryStringWithPrefix renders MediaSourceInfo in deepObject style under prefix.
func (m *MediaSourceInfo) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(m, prefix)
}

// MediaStream is a single audio, video or subtitle stream of a media source.
type MediaStream struct {
	Codec        *string          `json:"Codec,omitempty" query:"Codec"`
	Language     *string          `json:"Language,omitempty" query:"Language"`
	Title        *string          `json:"Title,omitempty" query:"Title"`
	DisplayTitle *string          `json:"DisplayTitle,omitempty" query:"DisplayTitle"`
	IsDefault    *bool            `json:"IsDefault,omitempty" query:"IsDefault"`
	IsForced     *bool            `json:"IsForced,omitempty" query:"IsForced"`
	Height       *int32           `json:"Height,omitempty" query:"Height"`
	Width        *int32           `json:"Width,omitempty" query:"Width"`
	BitRate      *int32           `json:"BitRate,omitempty" query:"BitRate"`
	Channels     *int32           `json:"Channels,omitempty" query:"Channels"`
	SampleRate   *int32           `json:"SampleRate,omitempty" query:"SampleRate"`
	FrameRate    *float32         `json:"RealFrameRate,omitempty" query:"RealFrameRate"`
	Type         *MediaStreamType `json:"Type,omitempty" query:"Type"`
	Index        *int32           `json:"Index,omitempty" query:"Index"`
	IsExternal   *bool            `json:"IsExternal,omitempty" query:"IsExternal"`
	Path         *string          `json:"Path,omitempty" query:"Path"`
}

var _ querystring.Object = (*MediaStream)(nil)

// QueryFields returns the fields of MediaStream in declaration order.
func (s *MediaStream) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Optional("Codec", s.Codec),
		querystring.Optional("Language", s.Language),
		querystring.Optional("Title", s.Title),
		querystring.Optional("DisplayTitle", s.DisplayTitle),
		querystring.Optional("IsDefault", s.IsDefault),
		querystring.Optional("IsForced", s.IsForced),
		querystring.Optional("Height", s.Height),
		querystring.Optional("Width", s.Width),
		querystring.Optional("BitRate", s.BitRate),
		querystring.Optional("Channels", s.Channels),
		querystring.Optional("SampleRate", s.SampleRate),
		querystring.Optional("RealFrameRate", s.FrameRate),
		querystring.Optional("Type", s.Type),
		querystring.Optional("Index", s.Index),
		querystring.Optional("IsExternal", s.IsExternal),
		querystring.Optional("Path", s.Path),
	}
}

// ToURLQueryString renders MediaStream as a form style query string.
func (s *MediaStream) ToURLQueryString() string {
	return querystring.Serialize(s)
}

// ToURLQueryStringWithPrefix renders MediaStream in deepObject style under prefix.
func (s *MediaStream) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(s, prefix)
}

// MediaAttachment is a file such as a font embedded in a media source.
type MediaAttachment struct {
	Codec       *string `json:"Codec,omitempty" query:"Codec"`
	CodecTag    *string `json:"CodecTag,omitempty" query:"CodecTag"`
	Comment     *string `json:"Comment,omitempty" query:"Comment"`
	Index       *int32  `json:"Index,omitempty" query:"Index"`
	FileName    *string `json:"FileName,omitempty" query:"FileName"`
	MimeType    *string `json:"MimeType,omitempty" query:"MimeType"`
	DeliveryURL *string `json:"DeliveryUrl,omitempty" query:"DeliveryUrl"`
}

var _ querystring.Object = (*MediaAttachment)(nil)

// QueryFields returns the fields of MediaAttachment in declaration order.
func (a *MediaAttachment) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Optional("Codec", a.Codec),
		querystring.Optional("CodecTag", a.CodecTag),
		querystring.Optional("Comment", a.Comment),
		querystring.Optional("Index", a.Index),
		querystring.Optional("FileName", a.FileName),
		querystring.Optional("MimeType", a.MimeType),
		querystring.Optional("DeliveryUrl", a.DeliveryURL),
	}
}

// ToURLQueryString renders MediaAttachment as a form style query string.
func (a *MediaAttachment) ToURLQueryString() string {
	return querystring.Serialize(a)
}

// ToURLQueryStringWithPrefix renders MediaAttachment in deepObject style under prefix.
func (a *MediaAttachment) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(a, prefix)
}
