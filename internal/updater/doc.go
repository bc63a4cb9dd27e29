// Package updater checks GitHub for newer releases of installed mods.
//
// Only mods whose descriptor declares a github field are checked. A
// failing check for one mod never hides the results for the others; the
// failure travels in its report instead.
package updater
