package steamfiles

import (
	"fmt"
	"math"
	"strconv"
)

// Steam identifies apps by a positive integer, called an "appid" by
// Valve and an AppNum here.
//
// App IDs are handed out well below 4,000,000 as of 2023, so int32 is
// wide enough.
//
type AppNum int32

// parseAppNum gets an AppNum from a manifest field, with lots of error
// checking: the field is text and nothing upstream guarantees it is a
// sane number.
//
func parseAppNum(text, path string) (AppNum, error) {
	appNum, err := strconv.Atoi(text)
	if err != nil {
		return 0, fileError(path, "", "has app ID %q, need integer", text)
	}
	if appNum > math.MaxInt32 {
		panic(fmt.Sprintf("app ID %d from file %q is too big for int32!",
			appNum, path))
	} else if appNum <= 0 {
		return 0, fileError(path, "", "has app ID %d!?", appNum)
	}
	return AppNum(appNum), nil
}
