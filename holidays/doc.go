// Package holidays defines the boundary contract for the holidays
// collaborator: a provider that, given a two-letter country code, hands
// back the public- and school-holiday calendars the Holiday selector
// matcher consults.
//
// The ingestion pipeline that builds those calendars (scraping, curating,
// and serializing a country's holiday dates into the compact bitset format
// of package calendar) is out of scope. This package only defines the
// shape a provider must satisfy and a small in-memory implementation
// useful for tests and for embedders that load a handful of countries at
// startup.
package holidays
