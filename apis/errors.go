/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "errors"

// ErrNotImplemented is returned by Get — both a module's own Get and the
// manager's — when no model with the requested interface and model tags is
// implemented. It is part of the Module contract so that third-party
// modules and the core report the same error kind.
var ErrNotImplemented = errors.New("modx(apis): no model with the requested interface and model is implemented")
