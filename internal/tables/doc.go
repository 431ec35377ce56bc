// Package tables contains lookup tables for presenting ADTS header fields.
//
// This includes the sampling frequency index table and the channel
// configuration table. Header decoding itself keeps both fields as raw
// indices.
package tables
