//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	DWMWA_USE_IMMERSIVE_DARK_MODE = 20
	DWMWA_BORDER_COLOR            = 34
	DWMWA_CAPTION_COLOR           = 35
)

// SetDarkTitleBar paints the title bar dark to match the black clear color.
func SetDarkTitleBar(window *glfw.Window) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}

	var useDarkMode int32 = 1
	setWindowAttribute(unsafe.Pointer(hwnd), DWMWA_USE_IMMERSIVE_DARK_MODE, unsafe.Pointer(&useDarkMode), unsafe.Sizeof(useDarkMode))

	var borderColor uint32 = 0x00000000
	setWindowAttribute(unsafe.Pointer(hwnd), DWMWA_BORDER_COLOR, unsafe.Pointer(&borderColor), unsafe.Sizeof(borderColor))

	var captionColor uint32 = 0x00202020
	setWindowAttribute(unsafe.Pointer(hwnd), DWMWA_CAPTION_COLOR, unsafe.Pointer(&captionColor), unsafe.Sizeof(captionColor))
}

func setWindowAttribute(hwnd unsafe.Pointer, attr uintptr, value unsafe.Pointer, size uintptr) {
	// Errors are ignored: older builds reject the caption attributes.
	procDwmSetWindowAttribute.Call(uintptr(hwnd), attr, uintptr(value), size)
}
