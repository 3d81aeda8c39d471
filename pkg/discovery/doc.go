// Package discovery advertises and finds TCP-attached MT bridges over mDNS.
//
// A bridge that listens on TCP registers one `_mtbridge._tcp` service.
// Its TXT record carries the version record and the ping capability
// bitmap, so a host can pick a compatible bridge before connecting:
//
//	tv=2 pv=1 fw=1.0.0 st=0 caps=0043 id=00124b0001020304
//
// Hosts browse with MDNSBrowser; results are aggregated per instance so a
// bridge reachable on several interfaces appears once.
package discovery
