// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	goio "io"
	"os"
	"path"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Encoder defines encoders; e.g. gob or json
type Encoder interface {
	Encode(e interface{}) error
}

// Decoder defines decoders; e.g. gob or json
type Decoder interface {
	Decode(e interface{}) error
}

// GetEncoder returns a new encoder
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "json" {
		return json.NewEncoder(w)
	}
	return gob.NewEncoder(w)
}

// GetDecoder returns a new decoder
func GetDecoder(r goio.Reader, enctype string) Decoder {
	if enctype == "json" {
		return json.NewDecoder(r)
	}
	return gob.NewDecoder(r)
}

// Results holds the equilibrium of the spring-rods system
type Results struct {
	Nodes   [2][]float64 // node coordinates of (left, right) rods
	U       [2][]float64 // displacements
	Sig     [2][]float64 // stresses in elements
	F       float64      // energy at equilibrium
	Closure float64      // closure of the gap: uL[last] - uR[0]
	Status  string       // message from minimiser
}

// SaveResults saves results to a file in dir
func SaveResults(res *Results, dir, fnkey, enctype string, verbose bool) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := GetEncoder(&buf, enctype)

	// encode results
	err = enc.Encode(res)
	if err != nil {
		return chk.Err("cannot encode Results\n%v", err)
	}

	// save file
	return save_file(out_res_path(dir, fnkey, enctype), &buf, verbose)
}

// ReadResults reads results from a file in dir
func ReadResults(dir, fnkey, enctype string) (res *Results, err error) {

	// open file
	fn := out_res_path(dir, fnkey, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return
	}
	defer func() {
		errc := fil.Close()
		if err == nil {
			err = errc
		}
	}()

	// decode results
	res = new(Results)
	dec := GetDecoder(fil, enctype)
	err = dec.Decode(res)
	if err != nil {
		return nil, chk.Err("cannot decode Results from file <%s>\n%v", fn, err)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func out_res_path(dir, fnkey, enctype string) string {
	return path.Join(dir, io.Sf("%s_res.%s", fnkey, enctype))
}

func save_file(filename string, buf *bytes.Buffer, verbose bool) (err error) {
	fil, err := os.Create(filename)
	if err != nil {
		return
	}
	defer func() {
		errc := fil.Close()
		if err == nil {
			err = errc
		}
	}()
	_, err = fil.Write(buf.Bytes())
	if err != nil {
		return chk.Err("cannot write file <%s>\n%v", filename, err)
	}
	if verbose {
		io.Pfblue2("file <%s> written\n", filename)
	}
	return
}
