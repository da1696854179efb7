package rgadguard

const (
	// formFieldType is the form field carrying the lookup type.
	formFieldType = "type"
	// formFieldRing is the form field carrying the release ring.
	formFieldRing = "ring"
	// formFieldLanguage is the form field carrying the market language.
	formFieldLanguage = "lang"
	// formFieldURL is the lookup field used for Store URL queries.
	formFieldURL = "url"

	// contentTypeForm is the Content-Type of the lookup request body.
	contentTypeForm = "application/x-www-form-urlencoded"

	// internalServerErrorMarker is reported by the service inside a 200 response.
	internalServerErrorMarker = "Internal Server Error"
	// emptyListMarker is reported by the service when nothing matched the query.
	emptyListMarker = "The server returned an empty list"
)

const (
	// expireCellIndex is the zero-based index of the link expiry column.
	expireCellIndex = 1
	// sha1CellIndex is the zero-based index of the SHA-1 column.
	sha1CellIndex = 2
	// sizeCellIndex is the zero-based index of the size column.
	sizeCellIndex = 3
)
