package domain

// normalize maps free-form input onto a closed enum set. Matching is exact
// and case-sensitive; anything unrecognized coerces to the fallback value,
// so normalization never fails.
func normalize[T ~string](input string, table map[string]T, fallback T) T {
	if v, ok := table[input]; ok {
		return v
	}
	return fallback
}

var authProviders = map[string]AuthProvider{
	"EMAIL":  AuthProviderEmail,
	"GITHUB": AuthProviderGitHub,
}

var artistTypes = map[string]ArtistType{
	"BAND": ArtistTypeBand,
	"SOLO": ArtistTypeSolo,
}

var albumTypes = map[string]AlbumType{
	"STUDIO": AlbumTypeStudio,
	"LIVE":   AlbumTypeLive,
}

// NormalizeAuthProvider coerces input onto AuthProvider, defaulting to EMAIL.
func NormalizeAuthProvider(input string) AuthProvider {
	return normalize(input, authProviders, AuthProviderEmail)
}

// NormalizeArtistType coerces input onto ArtistType, defaulting to BAND.
func NormalizeArtistType(input string) ArtistType {
	return normalize(input, artistTypes, ArtistTypeBand)
}

// NormalizeAlbumType coerces input onto AlbumType, defaulting to STUDIO.
func NormalizeAlbumType(input string) AlbumType {
	return normalize(input, albumTypes, AlbumTypeStudio)
}
