// Package workflow drives the two operator-facing routines: the one-time
// environment setup and the interactive add-site run.
//
// AddSite walks a fixed sequence of states, collecting answers through an
// input.Prompter and applying side effects through a driver.Driver, a
// provision.Provisioner and a CertIssuer. Every failure ends the run;
// nothing is rolled back.
package workflow
