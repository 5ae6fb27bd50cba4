package settings

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/RyanMauldin/NinjaCore/bounds"
)

// LoadFile reads startup defaults from a settings file using Viper. The file
// (YAML, or any format Viper infers from the extension) recognizes three
// keys, all optional:
//
//	mode: list | ninja | array | passthrough
//	erase_after_use: true | false
//	encoding: utf-8 | iso-8859-1 | ...
//
// Keys not present in the file stay absent in the returned Settings, so a
// partial file only pins the tunables it names.
func LoadFile(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	s := &Settings{}

	if v.IsSet("mode") {
		m, err := bounds.ParseMode(v.GetString("mode"))
		if err != nil {
			return nil, fmt.Errorf("parsing settings %s: %w", path, err)
		}
		s.Mode = &m
	}

	if v.IsSet("erase_after_use") {
		b := v.GetBool("erase_after_use")
		s.EraseAfterUse = &b
	}

	if v.IsSet("encoding") {
		enc, err := LookupEncoding(v.GetString("encoding"))
		if err != nil {
			return nil, fmt.Errorf("parsing settings %s: %w", path, err)
		}
		s.Encoding = enc
	}

	return s, nil
}

// Apply installs the present fields of s onto the store. Absent fields leave
// the store's corresponding defaults untouched.
func Apply(s *Settings, st *Store) {
	if s == nil || st == nil {
		return
	}
	if s.Mode != nil {
		st.SetMode(*s.Mode)
	}
	if s.EraseAfterUse != nil {
		st.SetEraseAfterUse(*s.EraseAfterUse)
	}
	if s.Encoding != nil {
		st.SetEncoding(s.Encoding)
	}
}
