// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/gocarina/gocsv"
)

// LoopResult is one csv row of the benchmark report.
type LoopResult struct {
	Loop      int    `csv:"loop"`
	Values    int    `csv:"values"`
	Height    int    `csv:"height"`
	ElapsedNs int64  `csv:"elapsed_ns"`
	Root      string `csv:"root"`
}

// CSVStorage writes benchmark reports.  Every save replaces the file.
type CSVStorage struct {
	path string
	file *os.File
}

func NewCSVStorage(path string) *CSVStorage {
	return &CSVStorage{path: path}
}

func (storage *CSVStorage) create() error {
	file, err := os.OpenFile(storage.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	storage.file = file
	return err
}

func (storage *CSVStorage) Close() {
	if storage.file != nil {
		_ = storage.file.Close()
	}
}

func (storage *CSVStorage) SaveRows(rows []LoopResult) error {
	if err := storage.create(); err != nil {
		return err
	}
	defer storage.Close()

	return gocsv.MarshalFile(rows, storage.file)
}
