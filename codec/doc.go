/*
Package codec serializes models using the protocol buffers wire format.

Models carry protobuf struct tags on their fields and are encoded by the
reflection based marshaler of gogo/protobuf, so stored data can be read by any
protobuf implementation given the matching message definition.
*/
package codec
