// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package mlttest

import "github.com/stretchr/testify/mock"

// MockIO is a read-only storage backend.
type MockIO struct {
	mock.Mock
}

func (m *MockIO) ReadFile(location string) ([]byte, error) {
	args := m.Called(location)
	if data := args.Get(0); data != nil {
		return data.([]byte), args.Error(1)
	}

	return nil, args.Error(1)
}

// MockWriteIO is a storage backend accepting writes.
type MockWriteIO struct {
	MockIO
}

func (m *MockWriteIO) WriteFile(location string, content []byte) error {
	return m.Called(location, content).Error(0)
}

// MockClosingIO is a read-only backend holding a connection that has to
// be closed.
type MockClosingIO struct {
	MockIO
}

func (m *MockClosingIO) Close() error {
	return m.Called().Error(0)
}
