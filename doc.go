// Package main is the entry point of ticketgen, a generator for randomized ticket
// strings used as barcode payloads. It offers a command line to print tickets and the
// charset table, and an http service exposing the same generators with prometheus
// metrics and structured access logs.
package main
