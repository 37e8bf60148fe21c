// Package catalogstore defines the storage contract shared by the circulation
// engine and its feature slices: the circulation snapshot loaded before a
// decision is made, and the infrastructure error sentinels every engine
// implementation maps its failures onto.
//
// The PostgreSQL implementation lives in catalogstore/postgresengine.
package catalogstore
