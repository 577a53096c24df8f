// Package browser provides the Playwright session layer used by the
// litebrite page verifier.
//
// The package is built around two core concepts:
//
// 1. Session: Encapsulates a Playwright browser instance with its context and page
// 2. SessionManager: Registry owning the Playwright driver and all active sessions
//
// # Session Lifecycle
//
// Sessions follow this lifecycle:
//
//  1. Initialize: the manager installs (if needed) and starts the Playwright driver
//  2. Start: StartSession launches a Chromium instance with an isolated context and page
//  3. Use: navigation, waiting, screenshot capture, and DOM queries operate on the session
//  4. Shutdown: every remaining session is closed and the driver is stopped
//
// Shutdown is safe to defer from the process entry point; it releases all
// browser resources on every exit path, including failures part-way through
// a verification run.
//
// # Example Usage
//
//	manager := browser.NewSessionManager()
//	if err := manager.Initialize(); err != nil {
//	    return err
//	}
//	defer manager.Shutdown()
//
//	session, err := manager.StartSession("verify", browser.SessionOptions{
//	    Headless: true,
//	})
//	if err != nil {
//	    return err
//	}
//	if err := session.Navigate("http://localhost:5173", browser.NavigateOptions{}); err != nil {
//	    return err
//	}
package browser
