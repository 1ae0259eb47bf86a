package tooling

import (
	"bytes"
	"encoding/binary"
	"log"
)

// Provides general helper functions for comparisons and conversions

// RawBytes writes a given object as its byte representation voiding all type information in the process
// this is mainly used to be able to put data into gl.BufferData
func RawBytes(p interface{}) []byte {
	buf := new(bytes.Buffer)
	err := binary.Write(buf, binary.LittleEndian, p)
	if err != nil {
		log.Println("binary.Write failed:", err)
	}
	return buf.Bytes()
}

// TerminatedStr ensures the given string is \x00 terminated as OpenGL expects this for uniform and attribute names
func TerminatedStr(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\x00' {
		return s + "\x00"
	}
	return s
}
