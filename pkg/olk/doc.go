/*
Package olk provides a high-level, ergonomic API over the record-file
decoder.

# Quick Start

Decode a single record file:

	rec, err := olk.LoadFile("00000001.dat")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(rec.Properties["Subject"].Text())

# Basic Usage

Load a whole directory of record files into one aggregated set, the way an
index loader would merge them before handing them to the rest of the
pipeline:

	set, err := olk.LoadDir("cache/")
	if err != nil {
	    log.Fatal(err)
	}
	for _, msg := range set.ByClass["OlkMessage"] {
	    fmt.Println(msg.Properties["Subject"].Text())
	}

Errors from individual files are collected on the set rather than aborting
the whole load, since a single malformed record file shouldn't prevent
recovering the rest of the cache.
*/
package olk
