// Package extractors maps FIX Repository XML fragments to domain records.
//
// The Basic, Intermediate and Unified dialects encode the same logical
// value either as an attribute or as the text of a child element. Every
// extractor is assembled from Lookup values that try the candidate
// encodings in order and keep the first present one, so dialect tolerance
// lives in one place.
//
// There is one extractor per entity kind. Extractors are pure: they read
// a single element, allocate a fresh record and never retain it.
package extractors
