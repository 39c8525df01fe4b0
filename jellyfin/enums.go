package jellyfin

// ItemSortBy is a field items can be sorted by.
type ItemSortBy string

func (s ItemSortBy) String() string { return string(s) }

const (
	ItemSortByDefault        ItemSortBy = "Default"
	ItemSortByName           ItemSortBy = "Name"
	ItemSortBySortName       ItemSortBy = "SortName"
	ItemSortByDateCreated    ItemSortBy = "DateCreated"
	ItemSortByPremiereDate   ItemSortBy = "PremiereDate"
	ItemSortByStartDate      ItemSortBy = "StartDate"
	ItemSortByProductionYear ItemSortBy = "ProductionYear"
	ItemSortByRandom         ItemSortBy = "Random"
)

// SortOrder is the direction of a sort.
type SortOrder string

func (s SortOrder) String() string { return string(s) }

const (
	SortOrderAscending  SortOrder = "Ascending"
	SortOrderDescending SortOrder = "Descending"
)

// ImageType is the kind of artwork attached to an item.
type ImageType string

func (t ImageType) String() string { return string(t) }

const (
	ImageTypePrimary  ImageType = "Primary"
	ImageTypeArt      ImageType = "Art"
	ImageTypeBackdrop ImageType = "Backdrop"
	ImageTypeBanner   ImageType = "Banner"
	ImageTypeLogo     ImageType = "Logo"
	ImageTypeThumb    ImageType = "Thumb"
)

// ItemFields is an optional field the server can include in item responses.
type ItemFields string

func (f ItemFields) String() string { return string(f) }

const (
	ItemFieldsGenres       ItemFields = "Genres"
	ItemFieldsOverview     ItemFields = "Overview"
	ItemFieldsPath         ItemFields = "Path"
	ItemFieldsProviderIds  ItemFields = "ProviderIds"
	ItemFieldsMediaSources ItemFields = "MediaSources"
	ItemFieldsChannelInfo  ItemFields = "ChannelInfo"
)

// MediaProtocol is how a media source is reached.
type MediaProtocol string

func (p MediaProtocol) String() string { return string(p) }

const (
	MediaProtocolFile MediaProtocol = "File"
	MediaProtocolHTTP MediaProtocol = "Http"
	MediaProtocolRTMP MediaProtocol = "Rtmp"
	MediaProtocolRTSP MediaProtocol = "Rtsp"
	MediaProtocolUDP  MediaProtocol = "Udp"
)

// MediaStreamType is the kind of a stream within a media source.
type MediaStreamType string

func (t MediaStreamType) String() string { return string(t) }

const (
	MediaStreamTypeAudio         MediaStreamType = "Audio"
	MediaStreamTypeVideo         MediaStreamType = "Video"
	MediaStreamTypeSubtitle      MediaStreamType = "Subtitle"
	MediaStreamTypeEmbeddedImage MediaStreamType = "EmbeddedImage"
	MediaStreamTypeData          MediaStreamType = "Data"
	MediaStreamTypeLyric         MediaStreamType = "Lyric"
)

// MediaType is the broad class of playable media.
type MediaType string

func (t MediaType) String() string { return string(t) }

const (
	MediaTypeUnknown MediaType = "Unknown"
	MediaTypeVideo   MediaType = "Video"
	MediaTypeAudio   MediaType = "Audio"
	MediaTypePhoto   MediaType = "Photo"
	MediaTypeBook    MediaType = "Book"
)

// BaseItemKind is the type of a library item.
type BaseItemKind string

func (k BaseItemKind) String() string { return string(k) }

const (
	BaseItemKindMovie      BaseItemKind = "Movie"
	BaseItemKindSeries     BaseItemKind = "Series"
	BaseItemKindEpisode    BaseItemKind = "Episode"
	BaseItemKindAudio      BaseItemKind = "Audio"
	BaseItemKindMusicAlbum BaseItemKind = "MusicAlbum"
	BaseItemKindTvChannel  BaseItemKind = "TvChannel"
	BaseItemKindProgram    BaseItemKind = "Program"
)

// PlayMethod is how a session is playing its current item.
type PlayMethod string

func (m PlayMethod) String() string { return string(m) }

const (
	PlayMethodTranscode    PlayMethod = "Transcode"
	PlayMethodDirectStream PlayMethod = "DirectStream"
	PlayMethodDirectPlay   PlayMethod = "DirectPlay"
)

// RepeatMode is the repeat setting of a play queue.
type RepeatMode string

func (m RepeatMode) String() string { return string(m) }

const (
	RepeatModeNone RepeatMode = "RepeatNone"
	RepeatModeAll  RepeatMode = "RepeatAll"
	RepeatModeOne  RepeatMode = "RepeatOne"
)

// DlnaProfileType is the media class a device profile entry applies to.
type DlnaProfileType string

func (t DlnaProfileType) String() string { return string(t) }

const (
	DlnaProfileTypeAudio    DlnaProfileType = "Audio"
	DlnaProfileTypeVideo    DlnaProfileType = "Video"
	DlnaProfileTypePhoto    DlnaProfileType = "Photo"
	DlnaProfileTypeSubtitle DlnaProfileType = "Subtitle"
)
