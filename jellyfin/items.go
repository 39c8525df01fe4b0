package jellyfin

import (
	"time"

	"github.com/google/uuid"
	"github.com/speakeasy-api/querystring/querystring"
	"github.com/speakeasy-api/querystring/sequencedmap"
)

// BaseItemDto is a library item such as a movie, an episode or a live TV program.
type BaseItemDto struct {
	Name              *string                            `json:"Name,omitempty" query:"Name"`
	OriginalTitle     *string                            `json:"OriginalTitle,omitempty" query:"OriginalTitle"`
	ServerID          *string                            `json:"ServerId,omitempty" query:"ServerId"`
	ID                *uuid.UUID                         `json:"Id,omitempty" query:"Id"`
	Etag              *string                            `json:"Etag,omitempty" query:"Etag"`
	DateCreated       *time.Time                         `json:"DateCreated,omitempty" query:"DateCreated"`
	Container         *string                            `json:"Container,omitempty" query:"Container"`
	SortName          *string                            `json:"SortName,omitempty" query:"SortName"`
	PremiereDate      *time.Time                         `json:"PremiereDate,omitempty" query:"PremiereDate"`
	MediaSources      []*MediaSourceInfo                 `json:"MediaSources,omitempty" query:"MediaSources"`
	Path              *string                            `json:"Path,omitempty" query:"Path"`
	Overview          *string                            `json:"Overview,omitempty" query:"Overview"`
	CommunityRating   *float32                           `json:"CommunityRating,omitempty" query:"CommunityRating"`
	RunTimeTicks      *int64                             `json:"RunTimeTicks,omitempty" query:"RunTimeTicks"`
	ProductionYear    *int32                             `json:"ProductionYear,omitempty" query:"ProductionYear"`
	IndexNumber       *int32                             `json:"IndexNumber,omitempty" query:"IndexNumber"`
	ParentIndexNumber *int32                             `json:"ParentIndexNumber,omitempty" query:"ParentIndexNumber"`
	ProviderIDs       *sequencedmap.Map[string, *string] `json:"ProviderIds,omitempty" query:"ProviderIds"`
	IsFolder          *bool                              `json:"IsFolder,omitempty" query:"IsFolder"`
	ParentID          *uuid.UUID                         `json:"ParentId,omitempty" query:"ParentId"`
	Type              *BaseItemKind                      `json:"Type,omitempty" query:"Type"`
	Genres            []string                           `json:"Genres,omitempty" query:"Genres"`
	UserData          *UserItemDataDto                   `json:"UserData,omitempty" query:"UserData"`
	SeriesName        *string                            `json:"SeriesName,omitempty" query:"SeriesName"`
	SeriesID          *uuid.UUID                         `json:"SeriesId,omitempty" query:"SeriesId"`
	ChannelID         *uuid.UUID                         `json:"ChannelId,omitempty" query:"ChannelId"`
	ImageTags         map[string]string                  `json:"ImageTags,omitempty" query:"ImageTags"`
	BackdropImageTags []string                           `json:"BackdropImageTags,omitempty" query:"BackdropImageTags"`
	MediaType         *MediaType                         `json:"MediaType,omitempty" query:"MediaType"`
	StartDate         *time.Time                         `json:"StartDate,omitempty" query:"StartDate"`
	EndDate           *time.Time                         `json:"EndDate,omitempty" query:"EndDate"`
}

var _ querystring.Object = (*BaseItemDto)(nil)

// QueryFields returns the fields of BaseItemDto in declaration order.
func (b *BaseItemDto) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Optional("Name", b.Name),
		querystring.Optional("OriginalTitle", b.OriginalTitle),
		querystring.Optional("ServerId", b.ServerID),
		querystring.Optional("Id", b.ID),
		querystring.Optional("Etag", b.Etag),
		querystring.Optional("DateCreated", b.DateCreated),
		querystring.Optional("Container", b.Container),
		querystring.Optional("SortName", b.SortName),
		querystring.Optional("PremiereDate", b.PremiereDate),
		querystring.ObjectSequence("MediaSources", b.MediaSources),
		querystring.Optional("Path", b.Path),
		querystring.Optional("Overview", b.Overview),
		querystring.Optional("CommunityRating", b.CommunityRating),
		querystring.Optional("RunTimeTicks", b.RunTimeTicks),
		querystring.Optional("ProductionYear", b.ProductionYear),
		querystring.Optional("IndexNumber", b.IndexNumber),
		querystring.Optional("ParentIndexNumber", b.ParentIndexNumber),
		querystring.OrderedMapping("ProviderIds", b.ProviderIDs),
		querystring.Optional("IsFolder", b.IsFolder),
		querystring.Optional("ParentId", b.ParentID),
		querystring.Optional("Type", b.Type),
		querystring.Sequence("Genres", b.Genres),
		querystring.Nested("UserData", b.UserData),
		querystring.Optional("SeriesName", b.SeriesName),
		querystring.Optional("SeriesId", b.SeriesID),
		querystring.Optional("ChannelId", b.ChannelID),
		querystring.Mapping("ImageTags", b.ImageTags),
		querystring.Sequence("BackdropImageTags", b.BackdropImageTags),
		querystring.Optional("MediaType", b.MediaType),
		querystring.Optional("StartDate", b.StartDate),
		querystring.Optional("EndDate", b.EndDate),
	}
}

// ToURLQueryString renders BaseItemDto as a form style query string.
func (b *BaseItemDto) ToURLQueryString() string {
	return querystring.Serialize(b)
}

// ToURLQueryStringWithPrefix renders BaseItemDto in deepObject style under prefix.
func (b *BaseItemDto) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(b, prefix)
}

// UserItemDataDto is the per user state of an item.
type UserItemDataDto struct {
	Rating                *float64   `json:"Rating,omitempty" query:"Rating"`
	PlayedPercentage      *float64   `json:"PlayedPercentage,omitempty" query:"PlayedPercentage"`
	UnplayedItemCount     *int32     `json:"UnplayedItemCount,omitempty" query:"UnplayedItemCount"`
	PlaybackPositionTicks *int64     `json:"PlaybackPositionTicks,omitempty" query:"PlaybackPositionTicks"`
	PlayCount             *int32     `json:"PlayCount,omitempty" query:"PlayCount"`
	IsFavorite            *bool      `json:"IsFavorite,omitempty" query:"IsFavorite"`
	Likes                 *bool      `json:"Likes,omitempty" query:"Likes"`
	LastPlayedDate        *time.Time `json:"LastPlayedDate,omitempty" query:"LastPlayedDate"`
	Played                *bool      `json:"Played,omitempty" query:"Played"`
	Key                   *string    `json:"Key,omitempty" query:"Key"`
	ItemID                *uuid.UUID `json:"ItemId,omitempty" query:"ItemId"`
}

var _ querystring.Object = (*UserItemDataDto)(nil)

// QueryFields returns the fields of UserItemDataDto in declaration order.
func (u *UserItemDataDto) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Optional("Rating", u.Rating),
		querystring.Optional("PlayedPercentage", u.PlayedPercentage),
		querystring.Optional("UnplayedItemCount", u.UnplayedItemCount),
		querystring.Optional("PlaybackPositionTicks", u.PlaybackPositionTicks),
		querystring.Optional("PlayCount", u.PlayCount),
		querystring.Optional("IsFavorite", u.IsFavorite),
		querystring.Optional("Likes", u.Likes),
		querystring.Optional("LastPlayedDate", u.LastPlayedDate),
		querystring.Optional("Played", u.Played),
		querystring.Optional("Key", u.Key),
		querystring.Optional("ItemId", u.ItemID),
	}
}

// ToURLQueryString renders UserItemDataDto as a form style query string.
func (u *UserItemDataDto) ToURLQueryString() string {
	return querystring.Serialize(u)
}

// ToURLQueryStringWithPrefix renders UserItemDataDto in deepObject style under prefix.
func (u *UserItemDataDto) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(u, prefix)
}
