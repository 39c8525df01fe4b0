package jellyfin

import (
	"time"

	"github.com/speakeasy-api/querystring/querystring"
)

// SessionInfoDto is a connected client session.
type SessionInfoDto struct {
	PlayState                *PlayerStateInfo `json:"PlayState,omitempty" query:"PlayState"`
	RemoteEndPoint           *string          `json:"RemoteEndPoint,omitempty" query:"RemoteEndPoint"`
	PlayableMediaTypes       []MediaType      `json:"PlayableMediaTypes,omitempty" query:"PlayableMediaTypes"`
	ID                       *string          `json:"Id,omitempty" query:"Id"`
	UserID                   *string          `json:"UserId,omitempty" query:"UserId"`
	UserName                 *string          `json:"UserName,omitempty" query:"UserName"`
	Client                   *string          `json:"Client,omitempty" query:"Client"`
	LastActivityDate         *time.Time       `json:"LastActivityDate,omitempty" query:"LastActivityDate"`
	LastPlaybackCheckIn      *time.Time       `json:"LastPlaybackCheckIn,omitempty" query:"LastPlaybackCheckIn"`
	LastPausedDate           *time.Time       `json:"LastPausedDate,omitempty" query:"LastPausedDate"`
	DeviceName               *string          `json:"DeviceName,omitempty" query:"DeviceName"`
	DeviceType               *string          `json:"DeviceType,omitempty" query:"DeviceType"`
	NowPlayingItem           *BaseItemDto     `json:"NowPlayingItem,omitempty" query:"NowPlayingItem"`
	DeviceID                 *string          `json:"DeviceId,omitempty" query:"DeviceId"`
	ApplicationVersion       *string          `json:"ApplicationVersion,omitempty" query:"ApplicationVersion"`
	IsActive                 *bool            `json:"IsActive,omitempty" query:"IsActive"`
	SupportsMediaControl     *bool            `json:"SupportsMediaControl,omitempty" query:"SupportsMediaControl"`
	SupportsRemoteControl    *bool            `json:"SupportsRemoteControl,omitempty" query:"SupportsRemoteControl"`
	NowPlayingQueueFullItems []*BaseItemDto   `json:"NowPlayingQueueFullItems,omitempty" query:"NowPlayingQueueFullItems"`
	HasCustomDeviceName      *bool            `json:"HasCustomDeviceName,omitempty" query:"HasCustomDeviceName"`
	PlaylistItemID           *string          `json:"PlaylistItemId,omitempty" query:"PlaylistItemId"`
	ServerID                 *string          `json:"ServerId,omitempty" query:"ServerId"`
	UserPrimaryImageTag      *string          `json:"UserPrimaryImageTag,omitempty" query:"UserPrimaryImageTag"`
	SupportedCommands        []string         `json:"SupportedCommands,omitempty" query:"SupportedCommands"`
}

// NewSessionInfoDto returns a session with empty, present media type and command lists.
func NewSessionInfoDto() *SessionInfoDto {
	return &SessionInfoDto{
		PlayableMediaTypes: []MediaType{},
		SupportedCommands:  []string{},
	}
}

var _ querystring.Object = (*SessionInfoDto)(nil)

// QueryFields returns the fields of SessionInfoDto in declaration order.
func (s *SessionInfoDto) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Nested("PlayState", s.PlayState),
		querystring.Optional("RemoteEndPoint", s.RemoteEndPoint),
		querystring.Sequence("PlayableMediaTypes", s.PlayableMediaTypes),
		querystring.Optional("Id", s.ID),
		querystring.Optional("UserId", s.UserID),
		querystring.Optional("UserName", s.UserName),
		querystring.Optional("Client", s.Client),
		querystring.Optional("LastActivityDate", s.LastActivityDate),
		querystring.Optional("LastPlaybackCheckIn", s.LastPlaybackCheckIn),
		querystring.Optional("LastPausedDate", s.LastPausedDate),
		querystring.Optional("DeviceName", s.DeviceName),
		querystring.Optional("DeviceType", s.DeviceType),
		querystring.Nested("NowPlayingItem", s.NowPlayingItem),
		querystring.Optional("DeviceId", s.DeviceID),
		querystring.Optional("ApplicationVersion", s.ApplicationVersion),
		querystring.Optional("IsActive", s.IsActive),
		querystring.Optional("SupportsMediaControl", s.SupportsMediaControl),
		querystring.Optional("SupportsRemoteControl", s.SupportsRemoteControl),
		querystring.ObjectSequence("NowPlayingQueueFullItems", s.NowPlayingQueueFullItems),
		querystring.Optional("HasCustomDeviceName", s.HasCustomDeviceName),
		querystring.Optional("PlaylistItemId", s.PlaylistItemID),
		querystring.Optional("ServerId", s.ServerID),
		querystring.Optional("UserPrimaryImageTag", s.UserPrimaryImageTag),
		querystring.Sequence("SupportedCommands", s.SupportedCommands),
	}
}

// ToURLQueryString renders SessionInfoDto as a form style query string.
func (s *SessionInfoDto) ToURLQueryString() string {
	return querystring.Serialize(s)
}

// ToURLQueryStringWithPrefix renders SessionInfoDto in deepObject style under prefix.
func (s *SessionInfoDto) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(s, prefix)
}

// PlayerStateInfo is the playback state of a session.
type PlayerStateInfo struct {
	PositionTicks       *int64      `json:"PositionTicks,omitempty" query:"PositionTicks"`
	CanSeek             *bool       `json:"CanSeek,omitempty" query:"CanSeek"`
	IsPaused            *bool       `json:"IsPaused,omitempty" query:"IsPaused"`
	IsMuted             *bool       `json:"IsMuted,omitempty" query:"IsMuted"`
	VolumeLevel         *int32      `json:"VolumeLevel,omitempty" query:"VolumeLevel"`
	AudioStreamIndex    *int32      `json:"AudioStreamIndex,omitempty" query:"AudioStreamIndex"`
	SubtitleStreamIndex *int32      `json:"SubtitleStreamIndex,omitempty" query:"SubtitleStreamIndex"`
	MediaSourceID       *string     `json:"MediaSourceId,omitempty" query:"MediaSourceId"`
	PlayMethod          *PlayMethod `json:"PlayMethod,omitempty" query:"PlayMethod"`
	RepeatMode          *RepeatMode `json:"RepeatMode,omitempty" query:"RepeatMode"`
	LiveStreamID        *string     `json:"LiveStreamId,omitempty" query:"LiveStreamId"`
}

var _ querystring.Object = (*PlayerStateInfo)(nil)

// QueryFields returns the fields of PlayerStateInfo in declaration order.
func (p *PlayerStateInfo) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Optional("PositionTicks", p.PositionTicks),
		querystring.Optional("CanSeek", p.CanSeek),
		querystring.Optional("IsPaused", p.IsPaused),
		querystring.Optional("IsMuted", p.IsMuted),
		querystring.Optional("VolumeLevel", p.VolumeLevel),
		querystring.Optional("AudioStreamIndex", p.AudioStreamIndex),
		querystring.Optional("SubtitleStreamIndex", p.SubtitleStreamIndex),
		querystring.Optional("MediaSourceId", p.MediaSourceID),
		querystring.Optional("PlayMethod", p.PlayMethod),
		querystring.Optional("RepeatMode", p.RepeatMode),
		querystring.Optional("LiveStreamId", p.LiveStreamID),
	}
}

// ToURLQueryString renders PlayerStateInfo as a form style query string.
func (p *PlayerStateInfo) ToURLQueryString() string {
	return querystring.Serialize(p)
}

// ToURLQueryStringWithPrefix renders PlayerStateInfo in deepObject style under prefix.
func (p *PlayerStateInfo) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(p, prefix)
}
