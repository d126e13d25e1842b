//go:build darwin
// +build darwin

package main

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa
#import <Cocoa/Cocoa.h>

// Accessory policy removes Overglass from the dock and CMD+Tab; the tray
// icon is the only way in.
void OverglassSetAccessoryPolicy() {
    dispatch_async(dispatch_get_main_queue(), ^{
        [NSApp setActivationPolicy:NSApplicationActivationPolicyAccessory];
    });
}
*/
import "C"

func hideAppFromDock() {
	C.OverglassSetAccessoryPolicy()
}
