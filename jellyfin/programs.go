package jellyfin

import (
	"time"

	"github.com/google/uuid"
	"github.com/speakeasy-api/querystring/pointer"
	"github.com/speakeasy-api/querystring/querystring"
)

// GetProgramsDto is the filter for listing live TV programs.
type GetProgramsDto struct {
	ChannelIDs             []uuid.UUID  `json:"ChannelIds,omitempty" query:"ChannelIds"`
	UserID                 *uuid.UUID   `json:"UserId,omitempty" query:"UserId"`
	MinStartDate           *time.Time   `json:"MinStartDate,omitempty" query:"MinStartDate"`
	HasAired               *bool        `json:"HasAired,omitempty" query:"HasAired"`
	IsAiring               *bool        `json:"IsAiring,omitempty" query:"IsAiring"`
	MaxStartDate           *time.Time   `json:"MaxStartDate,omitempty" query:"MaxStartDate"`
	MinEndDate             *time.Time   `json:"MinEndDate,omitempty" query:"MinEndDate"`
	MaxEndDate             *time.Time   `json:"MaxEndDate,omitempty" query:"MaxEndDate"`
	IsMovie                *bool        `json:"IsMovie,omitempty" query:"IsMovie"`
	IsSeries               *bool        `json:"IsSeries,omitempty" query:"IsSeries"`
	IsNews                 *bool        `json:"IsNews,omitempty" query:"IsNews"`
	IsKids                 *bool        `json:"IsKids,omitempty" query:"IsKids"`
	IsSports               *bool        `json:"IsSports,omitempty" query:"IsSports"`
	StartIndex             *int32       `json:"StartIndex,omitempty" query:"StartIndex"`
	Limit                  *int32       `json:"Limit,omitempty" query:"Limit"`
	SortBy                 []ItemSortBy `json:"SortBy,omitempty" query:"SortBy"`
	SortOrder              []SortOrder  `json:"SortOrder,omitempty" query:"SortOrder"`
	Genres                 []string     `json:"Genres,omitempty" query:"Genres"`
	GenreIDs               []uuid.UUID  `json:"GenreIds,omitempty" query:"GenreIds"`
	EnableImages           *bool        `json:"EnableImages,omitempty" query:"EnableImages"`
	EnableTotalRecordCount *bool        `json:"EnableTotalRecordCount,omitempty" query:"EnableTotalRecordCount"`
	ImageTypeLimit         *int32       `json:"ImageTypeLimit,omitempty" query:"ImageTypeLimit"`
	EnableImageTypes       []ImageType  `json:"EnableImageTypes,omitempty" query:"EnableImageTypes"`
	EnableUserData         *bool        `json:"EnableUserData,omitempty" query:"EnableUserData"`
	SeriesTimerID          *string      `json:"SeriesTimerId,omitempty" query:"SeriesTimerId"`
	LibrarySeriesID        *uuid.UUID   `json:"LibrarySeriesId,omitempty" query:"LibrarySeriesId"`
	Fields                 []ItemFields `json:"Fields,omitempty" query:"Fields"`
}

// NewGetProgramsDto returns a filter that asks for the total record count, as the server does by default.
func NewGetProgramsDto() *GetProgramsDto {
	return &GetProgramsDto{
		EnableTotalRecordCount: pointer.From(true),
	}
}

var _ querystring.Object = (*GetProgramsDto)(nil)

// QueryFields returns the fields of GetProgramsDto in declaration order.
func (d *GetProgramsDto) QueryFields() []querystring.Field {
	return []querystring.Field{
		querystring.Sequence("ChannelIds", d.ChannelIDs),
		querystring.Optional("UserId", d.UserID),
		querystring.Optional("MinStartDate", d.MinStartDate),
		querystring.Optional("HasAired", d.HasAired),
		querystring.Optional("IsAiring", d.IsAiring),
		querystring.Optional("MaxStartDate", d.MaxStartDate),
		querystring.Optional("MinEndDate", d.MinEndDate),
		querystring.Optional("MaxEndDate", d.MaxEndDate),
		querystring.Optional("IsMovie", d.IsMovie),
		querystring.Optional("IsSeries", d.IsSeries),
		querystring.Optional("IsNews", d.IsNews),
		querystring.Optional("IsKids", d.IsKids),
		querystring.Optional("IsSports", d.IsSports),
		querystring.Optional("StartIndex", d.StartIndex),
		querystring.Optional("Limit", d.Limit),
		querystring.Sequence("SortBy", d.SortBy),
		querystring.Sequence("SortOrder", d.SortOrder),
		querystring.Sequence("Genres", d.Genres),
		querystring.Sequence("GenreIds", d.GenreIDs),
		querystring.Optional("EnableImages", d.EnableImages),
		querystring.Optional("EnableTotalRecordCount", d.EnableTotalRecordCount),
		querystring.Optional("ImageTypeLimit", d.ImageTypeLimit),
		querystring.Sequence("EnableImageTypes", d.EnableImageTypes),
		querystring.Optional("EnableUserData", d.EnableUserData),
		querystring.Optional("SeriesTimerId", d.SeriesTimerID),
		querystring.Optional("LibrarySeriesId", d.LibrarySeriesID),
		querystring.Sequence("Fields", d.Fields),
	}
}

// ToURLQueryString renders the filter in form style.
func (d *GetProgramsDto) ToURLQueryString() string {
	return querystring.Serialize(d)
}

// ToURLQueryStringWithPrefix renders the filter under prefix, see querystring.SerializeWithPrefix.
func (d *GetProgramsDto) ToURLQueryStringWithPrefix(prefix *string) string {
	return querystring.SerializeWithPrefix(d, prefix)
}
