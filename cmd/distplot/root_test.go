/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource(t *testing.T) {
	var tests = []struct {
		name    string
		params  rootParams
		wantErr bool
	}{
		{name: "Entropy", params: rootParams{}},
		{name: "Seed", params: rootParams{seed: 7}},
		{name: "Key", params: rootParams{key: strings.Repeat("ab", 32)}},
		{name: "Key not hex", params: rootParams{key: "xyz"}, wantErr: true},
		{name: "Key too short", params: rootParams{key: "abcd"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src, err := newSource(test.params)
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			u, err := src.Float64()
			require.NoError(t, err)
			assert.True(t, u >= 0 && u < 1)
		})
	}
}

func TestNewSource_Reproducible(t *testing.T) {
	for _, p := range []rootParams{{seed: 3}, {key: strings.Repeat("01", 32)}} {
		a, err := newSource(p)
		require.NoError(t, err)
		b, err := newSource(p)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			x, _ := a.Float64()
			y, _ := b.Float64()
			assert.Equal(t, x, y)
		}
	}
}

func TestConfigureLogger(t *testing.T) {
	l := logrus.New()
	require.NoError(t, configureLogger(l, "debug", "json"))
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	assert.Error(t, configureLogger(l, "loud", "text"))
	assert.Error(t, configureLogger(l, "info", "xml"))
}

func TestCommands(t *testing.T) {
	dir := t.TempDir()

	var tests = []struct {
		name string
		args []string
	}{
		{name: "cauchy", args: []string{"cauchy", "--seed", "1", "-n", "2000"}},
		{name: "gauss", args: []string{"gauss", "--key", strings.Repeat("0f", 32), "-n", "1000"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := filepath.Join(dir, test.name+".png")
			args := append(test.args, "-o", out, "--width", "4", "--height", "3", "--log-level", "error")
			RootCommand.SetArgs(args)

			require.NoError(t, RootCommand.Execute())
			info, err := os.Stat(out)
			require.NoError(t, err)
			assert.True(t, info.Size() > 0)
		})
	}
}
