// Package jellyfin holds the Jellyfin request and response DTOs that can be sent as query parameters.
//
// Every DTO implements querystring.Object by listing its fields in declaration order, so a value
// can be rendered in form style for a top level request or in deepObject style under a parameter name:
//
//	dto := jellyfin.NewGetProgramsDto()
//	dto.Limit = pointer.From[int32](10)
//	dto.Genres = []string{"News"}
//	dto.ToURLQueryString() // Limit=10&Genres=News&EnableTotalRecordCount=true
package jellyfin
