/*
   Copyright 2025 The DIRPX Authors

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

package apperror

import (
	"runtime"
	"strconv"
)

// maxStackDepth bounds the number of frames captured by CaptureStack.
const maxStackDepth = 32

// Frame is a single call site of a captured stack.
type Frame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// String formats the frame as "function (file:line)".
func (f Frame) String() string {
	return f.Function + " (" + f.File + ":" + strconv.Itoa(f.Line) + ")"
}

// Stack is a captured call stack, innermost frame first.
type Stack []Frame

// Strings returns one formatted line per frame, suitable for log attributes.
func (s Stack) Strings() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.String()
	}
	return out
}

// CaptureStack returns the stack of the calling goroutine. skip is the number
// of frames to omit above the caller of CaptureStack: 0 starts at the caller,
// 1 at the caller's caller, and so on.
func CaptureStack(skip int) Stack {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	s := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		s = append(s, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return s
}
