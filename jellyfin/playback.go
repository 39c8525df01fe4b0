package jellyfin

import (
	"github.com/google/uuid"
	"github.com/speakeasy-api/querystring/querystring"
)

// PlaybackInfoDto is the body of a playback info request.
type PlaybackInfoDto struct {
	UserID                              *uuid.UUID     `json:"UserId,omitempty" query:"UserId"`
	MaxStreamingBitrate                 *int32         `json:"MaxStreamingBitrate,omitempty" query:"MaxStreamingBitrate"`
	StartTimeTicks                      *int64         `json:"StartTimeTicks,omitempty" query:"StartTimeTicks"`
	AudioStreamIndex                    *int32         `json:"AudioStreamIndex,omitempty" query:"AudioStreamIndex"`
	SubtitleStreamIndex                 *int32         `json:"SubtitleStreamIndex,omitempty" query:"SubtitleStreamIndex"`
	MaxAudioChannels                    *int32         `json:"MaxAudioChannels,omitempty" query:"MaxAudioChannels"`
	MediaSourceID                       *string        `json:"MediaSourceId,omitempty" query:"MediaSourceId"`
	LiveStreamID                        *string        `json:"LiveStreamId,omitempty" query:"LiveStreamId"`
	DeviceProfile                       *DeviceProfile `json:"DeviceProfile,omitempty" query:"DeviceProfile"`
	EnableDirectPlay                    *bool          `json:"EnableDirectPlay,omitempty" query:"EnableDirectPlay"`
	EnableDirectStream                  *bool          `json:"EnableDirectStream,omitempty" query:"EnableDirectStream"`
	EnableTranscoding                   *bool          `json:"EnableTranscoding,omitempty" query:"EnableTranscoding"`
	AllowVideoStreamCopy                *bool          `json:"AllowVideoStreamCopy,omitempty" query:"AllowVideoStreamCopy"`
	AllowAudioStreamCopy                *bool          `json:"AllowAudioStreamCopy,omitempty" query:"AllowAudioStreamCopy"`
	AutoOpenLiveStream                  *bool          `json:"AutoOpenLiveStream,omitempty" query:"AutoOpenLiveStream"`
	AlwaysBurnInSubtitleWhenTranscoding *bool          `json:"AlwaysBurnInSubtitleWhenTranscoding,omitempty" query:"AlwaysBurnInSubtitleWhenTranscoding"`
}

var _ querystring.Object = (*PlaybackInfoDto)(nil)

// QueryFields returns the fields of PlaybackInfoDto in declaration order.
func (p *PlaybackInfoDto) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Optional("UserId", p.UserID),
		querystring.Optional("MaxStreamingBitrate", p.MaxStreamingBitrate),
		querystring.Optional("StartTimeTicks", p.StartTimeTicks),
		querystring.Optional("AudioStreamIndex", p.AudioStreamIndex),
		querystring.Optional("SubtitleStreamIndex", p.SubtitleStreamIndex),
		querystring.Optional("MaxAudioChannels", p.MaxAudioChannels),
		querystring.Optional("MediaSourceId", p.MediaSourceID),
		querystring.Optional("LiveStreamId", p.LiveStreamID),
		querystring.Nested("DeviceProfile", p.DeviceProfile),
		querystring.Optional("EnableDirectPlay", p.EnableDirectPlay),
		querystring.Optional("EnableDirectStream", p.EnableDirectStream),
		querystring.Optional("EnableTranscoding", p.EnableTranscoding),
		querystring.Optional("AllowVideoStreamCopy", p.AllowVideoStreamCopy),
		querystring.Optional("AllowAudioStreamCopy", p.AllowAudioStreamCopy),
		querystring.Optional("AutoOpenLiveStream", p.AutoOpenLiveStream),
		querystring.Optional("AlwaysBurnInSubtitleWhenTranscoding", p.AlwaysBurnInSubtitleWhenTranscoding),
	}
}

// ToURLQueryString renders PlaybackInfoDto as a form style query string.
func (p *PlaybackInfoDto) ToURLQueryString() string {
	return querystring.Serialize(p)
}

// ToURLQueryStringWithPrefix renders PlaybackInfoDto in deepObject style under prefix.
func (p *PlaybackInfoDto) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(p, prefix)
}

// DeviceProfile describes what a client can play without transcoding.
type DeviceProfile struct {
	Name                *string              `json:"Name,omitempty" query:"Name"`
	ID                  *uuid.UUID           `json:"Id,omitempty" query:"Id"`
	MaxStreamingBitrate *int32               `json:"MaxStreamingBitrate,omitempty" query:"MaxStreamingBitrate"`
	MaxStaticBitrate    *int32               `json:"MaxStaticBitrate,omitempty" query:"MaxStaticBitrate"`
	DirectPlayProfiles  []*DirectPlayProfile `json:"DirectPlayProfiles,omitempty" query:"DirectPlayProfiles"`
}

var _ querystring.Object = (*DeviceProfile)(nil)

// QueryFields returns the fields of DeviceProfile in declaration order.
func (d *DeviceProfile) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Optional("Name", d.Name),
		querystring.Optional("Id", d.ID),
		querystring.Optional("MaxStreamingBitrate", d.MaxStreamingBitrate),
		querystring.Optional("MaxStaticBitrate", d.MaxStaticBitrate),
		querystring.ObjectSequence("DirectPlayProfiles", d.DirectPlayProfiles),
	}
}

// ToURLQueryString renders DeviceProfile as a form style query string.
func (d *DeviceProfile) ToURLQueryString() string {
	return querystring.Serialize(d)
}

// ToURLQueryStringWithPrefix renders DeviceProfile in deepObject style under prefix.
func (d *DeviceProfile) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(d, prefix)
}

// DirectPlayProfile is a container and codec combination a device plays natively.
type DirectPlayProfile struct {
	Container  *string          `json:"Container,omitempty" query:"Container"`
	AudioCodec *string          `json:"AudioCodec,omitempty" query:"AudioCodec"`
	VideoCodec *string          `json:"VideoCodec,omitempty" query:"VideoCodec"`
	Type       *DlnaProfileType `json:"Type,omitempty" query:"Type"`
}

var _ querystring.Object = (*DirectPlayProfile)(nil)

// QueryFields returns the fields of DirectPlayProfile in declaration order.
func (d *DirectPlayProfile) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Optional("Container", d.Container),
		querystring.Optional("AudioCodec", d.AudioCodec),
		querystring.Optional("VideoCodec", d.VideoCodec),
		querystring.Optional("Type", d.Type),
	}
}

// ToURLQueryString renders DirectPlayProfile as a form style query string.
func (d *DirectPlayProfile) ToURLQueryString() string {
	return querystring.Serialize(d)
}

// ToURLQueryStringWithPrefix renders DirectPlayProfile in deepObject style under prefix.
func (d *DirectPlayProfile) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(d, prefix)
}
