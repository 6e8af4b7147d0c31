/*
Copyright (c) Facebook, Inc. and its affiliates.

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

/*
Package checker turns the free-form text output of the host's time-sync query
commands into typed records with documented fallbacks, and makes sure the
time-sync service itself is running before anything is queried. Everything is
driven by Runner, which recovers from every stage failure so a best-effort
report is always produced.
*/
package checker
