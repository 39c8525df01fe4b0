package jellyfin_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/speakeasy-api/querystring/jellyfin"
	"github.com/speakeasy-api/querystring/pointer"
	"github.com/speakeasy-api/querystring/querystring"
	"github.com/speakeasy-api/querystring/sequencedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dto interface {
	querystring.Object
	ToURLQueryString() string
	ToURLQueryStringWithPrefix(prefix *string) string
}

var (
	userID    = uuid.MustParse("6b1d0c5e-8f2a-4d3b-9c7e-1a2b3c4d5e6f")
	channelA  = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	channelB  = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	startDate = time.Date(2024, 3, 1, 19, 0, 0, 0, time.UTC)
)

func programs() *jellyfin.GetProgramsDto {
	d := jellyfin.NewGetProgramsDto()
	d.ChannelIDs = []uuid.UUID{channelA, channelB}
	d.UserID = &userID
	d.MinStartDate = &startDate
	d.IsKids = pointer.From(true)
	d.Limit = pointer.From[int32](10)
	d.SortBy = []jellyfin.ItemSortBy{jellyfin.ItemSortByStartDate, jellyfin.ItemSortByName}
	d.SortOrder = []jellyfin.SortOrder{jellyfin.SortOrderAscending}
	d.Genres = []string{"Science Fiction"}
	d.Fields = []jellyfin.ItemFields{jellyfin.ItemFieldsChannelInfo}
	return d
}

func mediaSource() *jellyfin.MediaSourceInfo {
	m := jellyfin.NewMediaSourceInfo()
	m.ID = pointer.From("abc")
	m.MediaStreams = []*jellyfin.MediaStream{
		{Codec: pointer.From("h264"), Type: pointer.From(jellyfin.MediaStreamTypeVideo)},
		nil,
		{Codec: pointer.From("aac"), Index: pointer.From[int32](1)},
	}
	m.RequiredHTTPHeaders = sequencedmap.New(
		sequencedmap.NewElem("User-Agent", pointer.From("VLC/3.0")),
		sequencedmap.NewElem("Accept", pointer.From("*/*")),
	)
	return m
}

func item() *jellyfin.BaseItemDto {
	return &jellyfin.BaseItemDto{
		Name: pointer.From("The Matrix"),
		ProviderIDs: sequencedmap.New(
			sequencedmap.NewElem("Tmdb", pointer.From("603")),
			sequencedmap.NewElem("Imdb", pointer.From("tt0133093")),
		),
		UserData:  &jellyfin.UserItemDataDto{PlayCount: pointer.From[int32](2), Played: pointer.From(true)},
		ImageTags: map[string]string{"Primary": "abc", "Backdrop": "def"},
	}
}

func session() *jellyfin.SessionInfoDto {
	s := jellyfin.NewSessionInfoDto()
	s.PlayState = &jellyfin.PlayerStateInfo{
		PositionTicks: pointer.From[int64](0),
		IsPaused:      pointer.From(false),
		PlayMethod:    pointer.From(jellyfin.PlayMethodDirectPlay),
	}
	s.DeviceName = pointer.From("Living Room")
	s.NowPlayingItem = &jellyfin.BaseItemDto{Name: pointer.From("Episode 1")}
	s.NowPlayingQueueFullItems = []*jellyfin.BaseItemDto{{Name: pointer.From("A")}, {Name: pointer.From("B")}}
	return s
}

func playbackInfo() *jellyfin.PlaybackInfoDto {
	return &jellyfin.PlaybackInfoDto{
		MaxStreamingBitrate: pointer.From[int32](120000000),
		DeviceProfile: &jellyfin.DeviceProfile{
			Name: pointer.From("Web"),
			DirectPlayProfiles: []*jellyfin.DirectPlayProfile{
				{Container: pointer.From("mp4,mkv"), VideoCodec: pointer.From("h264"), Type: pointer.From(jellyfin.DlnaProfileTypeVideo)},
			},
		},
		EnableDirectPlay: pointer.From(true),
	}
}

func TestDto_ToURLQueryString_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dto      dto
		expected string
	}{
		{
			name:     "empty programs filter",
			dto:      &jellyfin.GetProgramsDto{},
			expected: "",
		},
		{
			name:     "programs filter defaults",
			dto:      jellyfin.NewGetProgramsDto(),
			expected: "EnableTotalRecordCount=true",
		},
		{
			name:     "programs filter",
			dto:      programs(),
			expected: "ChannelIds=00000000-0000-0000-0000-00000000000a&ChannelIds=00000000-0000-0000-0000-00000000000b&UserId=6b1d0c5e-8f2a-4d3b-9c7e-1a2b3c4d5e6f&MinStartDate=2024-03-01T19%3A00%3A00Z&IsKids=true&Limit=10&SortBy=StartDate&SortBy=Name&SortOrder=Ascending&Genres=Science%20Fiction&EnableTotalRecordCount=true&Fields=ChannelInfo",
		},
		{
			name:     "media source",
			dto:      mediaSource(),
			expected: "Id=abc&UseMostCompatibleTranscodingProfile=false&MediaStreams[Codec]=h264&MediaStreams[Type]=Video&MediaStreams[Codec]=aac&MediaStreams[Index]=1&RequiredHttpHeaders=VLC%2F3.0&RequiredHttpHeaders=%2A%2F%2A",
		},
		{
			name:     "item",
			dto:      item(),
			expected: "Name=The%20Matrix&ProviderIds=603&ProviderIds=tt0133093&UserData[PlayCount]=2&UserData[Played]=true&ImageTags=def&ImageTags=abc",
		},
		{
			name:     "session defaults",
			dto:      jellyfin.NewSessionInfoDto(),
			expected: "",
		},
		{
			name:     "session",
			dto:      session(),
			expected: "PlayState[PositionTicks]=0&PlayState[IsPaused]=false&PlayState[PlayMethod]=DirectPlay&DeviceName=Living%20Room&NowPlayingItem[Name]=Episode%201&NowPlayingQueueFullItems[Name]=A&NowPlayingQueueFullItems[Name]=B",
		},
		{
			name:     "playback info",
			dto:      playbackInfo(),
			expected: "MaxStreamingBitrate=120000000&DeviceProfile[Name]=Web&DeviceProfile[DirectPlayProfiles][0][Container]=mp4%2Cmkv&DeviceProfile[DirectPlayProfiles][0][VideoCodec]=h264&DeviceProfile[DirectPlayProfiles][0][Type]=Video&EnableDirectPlay=true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.dto.ToURLQueryString())
		})
	}
}

func TestDto_ToURLQueryStringWithPrefix_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dto      dto
		prefix   string
		expected string
	}{
		{
			name:     "programs filter",
			dto:      programs(),
			prefix:   "filter",
			expected: "filter[ChannelIds][0]=00000000-0000-0000-0000-00000000000a&filter[ChannelIds][1]=00000000-0000-0000-0000-00000000000b&filter[UserId]=6b1d0c5e-8f2a-4d3b-9c7e-1a2b3c4d5e6f&filter[MinStartDate]=2024-03-01T19%3A00%3A00Z&filter[IsKids]=true&filter[Limit]=10&filter[SortBy][0]=StartDate&filter[SortBy][1]=Name&filter[SortOrder][0]=Ascending&filter[Genres][0]=Science%20Fiction&filter[EnableTotalRecordCount]=true&filter[Fields][0]=ChannelInfo",
		},
		{
			name:     "media source",
			dto:      mediaSource(),
			prefix:   "source",
			expected: "source[Id]=abc&source[UseMostCompatibleTranscodingProfile]=false&source[MediaStreams][0][Codec]=h264&source[MediaStreams][0][Type]=Video&source[MediaStreams][2][Codec]=aac&source[MediaStreams][2][Index]=1&source[RequiredHttpHeaders][User-Agent]=VLC%2F3.0&source[RequiredHttpHeaders][Accept]=%2A%2F%2A",
		},
		{
			name:     "item",
			dto:      item(),
			prefix:   "item",
			expected: "item[Name]=The%20Matrix&item[ProviderIds][Tmdb]=603&item[ProviderIds][Imdb]=tt0133093&item[UserData][PlayCount]=2&item[UserData][Played]=true&item[ImageTags][Backdrop]=def&item[ImageTags][Primary]=abc",
		},
		{
			name:     "session",
			dto:      session(),
			prefix:   "session",
			expected: "session[PlayState][PositionTicks]=0&session[PlayState][IsPaused]=false&session[PlayState][PlayMethod]=DirectPlay&session[DeviceName]=Living%20Room&session[NowPlayingItem][Name]=Episode%201&session[NowPlayingQueueFullItems][0][Name]=A&session[NowPlayingQueueFullItems][1][Name]=B",
		},
		{
			name:     "empty prefix",
			dto:      &jellyfin.UserItemDataDto{Played: pointer.From(false)},
			prefix:   "",
			expected: "[Played]=false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.dto.ToURLQueryStringWithPrefix(&tt.prefix))
		})
	}
}

func TestDto_MatchesStructTags_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dto  dto
	}{
		{name: "programs filter", dto: programs()},
		{name: "media source", dto: mediaSource()},
		{name: "item", dto: item()},
		{name: "session", dto: session()},
		{name: "playback info", dto: playbackInfo()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reflected := querystring.Struct(tt.dto)
			assert.Equal(t, tt.dto.ToURLQueryString(), querystring.Serialize(reflected))
			assert.Equal(t, tt.dto.ToURLQueryStringWithPrefix(pointer.From("p")), querystring.SerializeWithPrefix(reflected, pointer.From("p")))
		})
	}
}

func TestDto_DecodeJSON_Success(t *testing.T) {
	t.Parallel()

	m := jellyfin.NewMediaSourceInfo()
	err := json.Unmarshal([]byte(`{"Id":"x","RequiredHttpHeaders":{"b":"2","a":"1","c":null}}`), m)
	require.NoError(t, err)

	assert.Equal(t, "Id=x&UseMostCompatibleTranscodingProfile=false&RequiredHttpHeaders=2&RequiredHttpHeaders=1&RequiredHttpHeaders=", m.ToURLQueryString())
	assert.Equal(t, "s[Id]=x&s[UseMostCompatibleTranscodingProfile]=false&s[RequiredHttpHeaders][b]=2&s[RequiredHttpHeaders][a]=1&s[RequiredHttpHeaders][c]=", m.ToURLQueryStringWithPrefix(pointer.From("s")))
}

func TestRegistry_Success(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"BaseItemDto",
		"DeviceProfile",
		"DirectPlayProfile",
		"GetProgramsDto",
		"MediaAttachment",
		"MediaSourceInfo",
		"MediaStream",
		"PlaybackInfoDto",
		"PlayerStateInfo",
		"SessionInfoDto",
		"UserItemDataDto",
	}, jellyfin.Names())

	for _, name := range jellyfin.Names() {
		ctor, ok := jellyfin.Lookup(name)
		require.True(t, ok, name)

		a, b := ctor(), ctor()
		require.NotNil(t, a, name)
		assert.NotSame(t, a, b, "%s constructor should return a fresh value", name)
	}

	ctor, ok := jellyfin.Lookup("GetProgramsDto")
	require.True(t, ok)
	assert.Equal(t, "EnableTotalRecordCount=true", querystring.Serialize(ctor()))

	ctor, ok = jellyfin.Lookup("MediaSourceInfo")
	require.True(t, ok)
	assert.Equal(t, "UseMostCompatibleTranscodingProfile=false", querystring.Serialize(ctor()))
}

func TestRegistry_Error(t *testing.T) {
	t.Parallel()

	ctor, ok := jellyfin.Lookup("NoSuchDto")
	assert.False(t, ok)
	assert.Nil(t, ctor)

	r := jellyfin.Registry{}
	assert.Empty(t, r.Names())
}

func TestEnums_String_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    interface{ String() string }
		expected string
	}{
		{name: "item sort by", value: jellyfin.ItemSortByPremiereDate, expected: "PremiereDate"},
		{name: "sort order", value: jellyfin.SortOrderDescending, expected: "Descending"},
		{name: "image type", value: jellyfin.ImageTypePrimary, expected: "Primary"},
		{name: "item fields", value: jellyfin.ItemFieldsProviderIds, expected: "ProviderIds"},
		{name: "media protocol", value: jellyfin.MediaProtocolHTTP, expected: "Http"},
		{name: "media stream type", value: jellyfin.MediaStreamTypeEmbeddedImage, expected: "EmbeddedImage"},
		{name: "media type", value: jellyfin.MediaTypeVideo, expected: "Video"},
		{name: "base item kind", value: jellyfin.BaseItemKindTvChannel, expected: "TvChannel"},
		{name: "play method", value: jellyfin.PlayMethodTranscode, expected: "Transcode"},
		{name: "repeat mode", value: jellyfin.RepeatModeOne, expected: "RepeatOne"},
		{name: "dlna profile type", value: jellyfin.DlnaProfileTypeSubtitle, expected: "Subtitle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}
