// Package integrationtests runs KuiLang sources through the front end and
// the builder together.
package integrationtests
